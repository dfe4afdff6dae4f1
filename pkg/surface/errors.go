/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package surface

import "errors"

var ErrNotNumber = errors.New("coordinate is not a number")

var ErrDegenerated = errors.New("surface has less than three vertices or zero area")
