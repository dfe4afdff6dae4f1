/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package refindex

import (
	"fmt"

	"github.com/voedger/idfkit/pkg/idd"
	"github.com/voedger/idfkit/pkg/objstore"
)

// Class field which draws values from reference list
type Consumer struct {
	Class *idd.Class
	Field *idd.Field
}

func (c Consumer) String() string {
	return fmt.Sprintf("%s.%s", c.Class.Name(), c.Field.AccessName())
}

// Record position which holds reference value
type Holder struct {
	Class    *idd.Class
	Record   *objstore.Record
	Field    *idd.Field
	Position int
}

// Returns held reference value
func (h Holder) Value() string {
	return h.Record.Value(h.Position).String()
}

func (h Holder) String() string {
	return fmt.Sprintf("%s.%s = «%s»", h.Class.Name(), h.Field.AccessName(), h.Value())
}
