/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package record

import (
	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/objstore"
)

// Binds record to its class
func New(cls *idd.Class, rec *objstore.Record) *Facade {
	return &Facade{cls: cls, rec: rec}
}
