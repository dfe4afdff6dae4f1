/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package editor

import "errors"

var ErrNameUniqueViolation = errors.New("object name is not unique")

var ErrUniqueObjectViolation = errors.New("class allows single object only")

var ErrNoNameField = errors.New("class has no name field")

var ErrFieldAssignedTwice = errors.New("field is assigned twice")
