/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package main

import "errors"

var errDanglingReferences = errors.New("data file has dangling references")

var errInvalidAssignment = errors.New("field assignment must be in form «field=value»")
