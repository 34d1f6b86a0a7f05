package edgelist

import "errors"

// ErrUnreadableSource indicates the link source could not be opened or read.
var ErrUnreadableSource = errors.New("edgelist: unreadable source")

// ErrUnwritableOutput indicates the assignment could not be written.
var ErrUnwritableOutput = errors.New("edgelist: unwritable output")

// ErrSparseIDs indicates a gonum graph whose node ids are not exactly 0..n-1.
var ErrSparseIDs = errors.New("edgelist: node ids are not dense")
