////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Memoria contributors                                      //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

//go:build js && wasm

// This file contains generic IndexedDB helpers shared by the snapshot cache.

package cache

import (
	"context"
	"syscall/js"
	"time"

	"github.com/hack-pad/go-indexeddb/idb"
	"github.com/pkg/errors"
)

// dbTimeout is the global timeout for operations with the storage
// [context.Context].
const dbTimeout = time.Second

// NewContext builds a context for IndexedDB operations.
func NewContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}

// sendRequest is a wrapper for the request.Await() method providing a
// timeout.
func sendRequest(request *idb.Request) (js.Value, error) {
	ctx, cancel := NewContext()
	defer cancel()
	result, err := request.Await(ctx)
	if err != nil {
		return js.Undefined(), err
	} else if ctx.Err() != nil {
		return js.Undefined(), ctx.Err()
	}
	return result, nil
}

// getAll returns every value in the given object store in key order.
func getAll(db *idb.Database, objectStoreName string) ([]js.Value, error) {
	parentErr := errors.Errorf("failed to GetAll %s", objectStoreName)

	txn, err := db.Transaction(idb.TransactionReadOnly, objectStoreName)
	if err != nil {
		return nil, errors.WithMessagef(parentErr,
			"Unable to create Transaction: %+v", err)
	}
	store, err := txn.ObjectStore(objectStoreName)
	if err != nil {
		return nil, errors.WithMessagef(parentErr,
			"Unable to get ObjectStore: %+v", err)
	}

	cursorRequest, err := store.OpenCursor(idb.CursorNext)
	if err != nil {
		return nil, errors.WithMessagef(parentErr,
			"Unable to open Cursor: %+v", err)
	}

	ctx, cancel := NewContext()
	defer cancel()
	result := make([]js.Value, 0)
	err = cursorRequest.Iter(ctx,
		func(cursor *idb.CursorWithValue) error {
			row, err := cursor.Value()
			if err != nil {
				return err
			}
			result = append(result, row)
			return nil
		})
	if ctx.Err() != nil {
		return nil, errors.WithMessagef(parentErr, "%+v", ctx.Err())
	}
	if err != nil {
		return nil, errors.WithMessagef(parentErr, "%+v", err)
	}
	return result, nil
}

// put inserts or updates the value in the given object store.
func put(db *idb.Database, objectStoreName string, value js.Value) error {
	txn, err := db.Transaction(idb.TransactionReadWrite, objectStoreName)
	if err != nil {
		return errors.Errorf("Unable to create Transaction: %+v", err)
	}
	store, err := txn.ObjectStore(objectStoreName)
	if err != nil {
		return errors.Errorf("Unable to get ObjectStore: %+v", err)
	}

	request, err := store.Put(value)
	if err != nil {
		return errors.Errorf("Unable to Put: %+v", err)
	}

	_, err = sendRequest(request)
	if err != nil {
		return errors.Errorf("Putting value failed: %+v", err)
	}
	return nil
}

// clear deletes every value in the given object store.
func clear(db *idb.Database, objectStoreName string) error {
	txn, err := db.Transaction(idb.TransactionReadWrite, objectStoreName)
	if err != nil {
		return errors.Errorf("Unable to create Transaction: %+v", err)
	}
	store, err := txn.ObjectStore(objectStoreName)
	if err != nil {
		return errors.Errorf("Unable to get ObjectStore: %+v", err)
	}

	request, err := store.Clear()
	if err != nil {
		return errors.Errorf("Unable to Clear: %+v", err)
	}

	ctx, cancel := NewContext()
	defer cancel()
	if err = request.Await(ctx); err != nil {
		return errors.Errorf("Clearing store failed: %+v", err)
	}
	return nil
}
