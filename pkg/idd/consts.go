/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idd

// Label of the class-name slot, position 0 of every record
const KeyFieldName = "key"

// Access name of the object name field
const NameFieldName = "Name"

// Upper bound of record length. Extensible positions at or past it are not resolved
const MaxRecordLength = 100000

// Default capacity of per-class name resolution cache
const DefaultNameCacheSize = 1024

// Schema versions below this major version need legacy skip list
const legacySkipListBelowMajor = 8

// Classes whose irregular shape is intentional in legacy schemas
var legacySkipList = []string{"TABLE:MULTIVARIABLELOOKUP"}

// Group number used to find the number token position in replicated labels
const groupMarker = 987654321

const synthesizedLabelFmt = "Extensible 1 Field %d"
