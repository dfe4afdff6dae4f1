/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package refindex

import "github.com/voedger/idfkit/pkg/idd"

// Creates reference index for registry. Index is built on first use
func New(reg *idd.Registry) *Index {
	return &Index{reg: reg}
}
