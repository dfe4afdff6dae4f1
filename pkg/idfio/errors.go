/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idfio

import "errors"

var ErrVersionMismatch = errors.New("data file version does not match schema version")

var ErrNoVersion = errors.New("data file has no Version object")
