// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command hanavet reports the dispatch table of the built-in hana
// declarations. Programs with their own declarations build a copy of this
// command that imports their packages.
package main

import (
	"code.hybscloud.com/hana"
	"code.hybscloud.com/hana/vet"
)

func main() {
	vet.Main(hana.Global())
}
