/*
 * Copyright (c) 2024-present unTill Software Development Group B.V.
 * @author: Nikolay Nikitin
 */

package idfio

// Column of «!-» field comments in written data files
const commentColumn = 29

// Indent of field lines in written data files
const fieldIndent = "    "

// Format of classes written in single line
const singleLineFormat = "singleline"

const versionClass = "VERSION"
