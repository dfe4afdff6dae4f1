/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package objstore

import "github.com/voedger/idfkit/pkg/idd"

// Creates new empty store for schema registry
func New(reg *idd.Registry) *Store {
	return newStore(reg)
}
