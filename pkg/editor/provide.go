/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package editor

import (
	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/objstore"
	"github.com/voedger/idfkit/pkg/refindex"
)

// Creates editor for store of schema registry
func New(reg *idd.Registry, store *objstore.Store, opts ...Option) *Editor {
	e := &Editor{
		reg:   reg,
		store: store,
		index: refindex.New(reg),
	}
	for _, o := range opts {
		o(e)
	}
	return e
}
