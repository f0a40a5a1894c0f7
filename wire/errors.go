/*************************************************************************
 * Copyright 2017 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package wire

import (
	"errors"
	"fmt"
	"io"
)

// ErrReceive marks the local receive-error kind: the socket closed or
// returned EOF in the middle of a read. It is always fatal for the
// connection that surfaces it.
var ErrReceive = errors.New("wire: receive error")

func newReceiveError(cause error) error {
	if errors.Is(cause, io.EOF) || errors.Is(cause, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %v", ErrReceive, cause)
	}
	return fmt.Errorf("%w: %v", ErrReceive, cause)
}
