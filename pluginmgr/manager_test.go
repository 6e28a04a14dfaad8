// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pluginmgr

import (
	"testing"

	"github.com/33cn/arena/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndInit(t *testing.T) {
	var gotName string
	var gotSub []byte
	Register(&PluginBase{
		Name:     "test-plugin",
		ExecName: "testexec",
		Exec: func(name string, sub []byte) {
			gotName = name
			gotSub = sub
		},
		Cmd: func() *cobra.Command { return &cobra.Command{Use: "testexec"} },
	})
	assert.Panics(t, func() { Register(&PluginBase{Name: "test-plugin"}) })
	assert.Panics(t, func() { Register(&PluginBase{}) })
	assert.True(t, HasExec("testexec"))
	assert.False(t, HasExec("notexist"))

	InitExec(&types.ConfigSubModule{Exec: map[string][]byte{"testexec": []byte(`{"a":1}`)}})
	assert.Equal(t, "testexec", gotName)
	assert.Equal(t, []byte(`{"a":1}`), gotSub)

	InitExec(nil)
	assert.Nil(t, gotSub)

	root := &cobra.Command{Use: "root"}
	AddCmd(root)
	cmd, _, err := root.Find([]string{"testexec"})
	assert.NoError(t, err)
	assert.Equal(t, "testexec", cmd.Use)
}
