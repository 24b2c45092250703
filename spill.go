// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

import "code.hybscloud.com/atomix"

// spillCount counts Inline→Spilled transitions across all hybrid engines.
var spillCount atomix.Uint32

// Spills returns the number of hybrid containers that have spilled to the
// heap since the process started. The counter wraps at 2^32.
func Spills() uint32 {
	return spillCount.Load()
}
