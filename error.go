// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package rx

import "errors"

// ErrShared reports that an Event payload could not be reclaimed for
// exclusive ownership because other handles to it are still alive.
// The operation that returned it had no effect; the handle remains valid.
var ErrShared = errors.New("rx: payload has other live handles")
