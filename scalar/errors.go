// Copyright ©2014 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scalar

import "errors"

// ErrMalformedBigInt is returned by DecodeInt when the hexadecimal magnitude
// of an IntReply cannot be parsed.
var ErrMalformedBigInt = errors.New("scalar: malformed big integer encoding")
