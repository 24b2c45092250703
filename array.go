// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package svec

// Array is the set of fixed-size array types usable as inline slot storage.
// The array length is the inline capacity N: Fixed[int, [4]int] holds at
// most four values.
type Array[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[24]T | ~[32]T | ~[48]T | ~[64]T | ~[96]T | ~[128]T |
		~[256]T | ~[512]T | ~[1024]T
}
