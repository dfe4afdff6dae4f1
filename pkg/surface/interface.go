/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package surface

import "github.com/voedger/idfkit/pkg/fieldconv"

// Read-only named fields access. Implemented by record.Facade
type FieldReader interface {
	Get(name string) (fieldconv.Value, error)
}

// Point in building coordinates, meters
type Vertex struct {
	X, Y, Z float64
}
