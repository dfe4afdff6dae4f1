/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package record

import (
	"errors"

	"github.com/voedger/idfkit/pkg/idd"
)

var ErrKeyFieldReadOnlyError = errors.New("key field is read only")

func ErrKeyFieldReadOnly(class string) error {
	return idd.EnrichError(ErrKeyFieldReadOnlyError, "class «%s»", class)
}
