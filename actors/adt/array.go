package adt

import (
	"bytes"

	amt "github.com/filecoin-project/go-amt-ipld/v4"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/ipfs/go-cid"
	typegen "github.com/whyrusleeping/cbor-gen"
	"golang.org/x/xerrors"
)

// Array stores a sparse sequence of values in an AMT.
type Array struct {
	root  *amt.Root
	store Store
}

// AsArray interprets a store as an AMT-based array with root `r`.
func AsArray(s Store, r cid.Cid, bitwidth uint) (*Array, error) {
	root, err := amt.LoadAMT(s.Context(), s, r, amt.UseTreeBitWidth(bitwidth))
	if err != nil {
		return nil, xerrors.Errorf("failed to load amt root %v: %w", r, err)
	}
	return &Array{
		root:  root,
		store: s,
	}, nil
}

// MakeEmptyArray creates a new array backed by an empty AMT.
func MakeEmptyArray(s Store, bitwidth uint) (*Array, error) {
	root, err := amt.NewAMT(s, amt.UseTreeBitWidth(bitwidth))
	if err != nil {
		return nil, err
	}
	return &Array{
		root:  root,
		store: s,
	}, nil
}

// StoreEmptyArray creates and stores a new empty array, returning its CID.
func StoreEmptyArray(s Store, bitwidth uint) (cid.Cid, error) {
	arr, err := MakeEmptyArray(s, bitwidth)
	if err != nil {
		return cid.Undef, err
	}
	return arr.Root()
}

// Root flushes the array and returns the root cid of the underlying AMT.
func (a *Array) Root() (cid.Cid, error) {
	c, err := a.root.Flush(a.store.Context())
	if err != nil {
		return cid.Undef, xerrors.Errorf("failed to flush array root: %w", err)
	}
	return c, nil
}

// Set adds or replaces the value at index `i`.
func (a *Array) Set(i uint64, value cbor.Marshaler) error {
	if err := a.root.Set(a.store.Context(), i, value); err != nil {
		return xerrors.Errorf("failed to set index %v: %w", i, err)
	}
	return nil
}

// Get retrieves the value at index `i` into `out`, if it is present.
// Returns whether the index was found.
func (a *Array) Get(i uint64, out cbor.Unmarshaler) (bool, error) {
	found, err := a.root.Get(a.store.Context(), i, out)
	if err != nil {
		return false, xerrors.Errorf("failed to get index %v: %w", i, err)
	}
	return found, nil
}

// TryDelete removes the value at index `i`, if it exists.
// Returns whether the index was previously present.
func (a *Array) TryDelete(i uint64) (bool, error) {
	found, err := a.root.Delete(a.store.Context(), i)
	if err != nil {
		return false, xerrors.Errorf("failed to delete index %v: %w", i, err)
	}
	return found, nil
}

// Length returns the number of values stored in the array.
func (a *Array) Length() uint64 {
	return a.root.Len()
}

// ForEach applies fn to each index-value pair in the array. The value is
// deserialized into `out` before each call.
func (a *Array) ForEach(out cbor.Unmarshaler, fn func(i uint64) error) error {
	return a.root.ForEach(a.store.Context(), func(i uint64, val *typegen.Deferred) error {
		if out != nil {
			if err := out.UnmarshalCBOR(bytes.NewReader(val.Raw)); err != nil {
				return err
			}
		}
		return fn(i)
	})
}

var errStopIteration = xerrors.New("stop iteration")

// ForEachRanged iterates at most `limit` index-value pairs starting at index
// `start`, deserializing each value into `out` before calling fn. A limit of
// zero iterates to the end of the array. It returns the index at which a
// subsequent page should resume, and whether any such index exists.
func (a *Array) ForEachRanged(start uint64, limit uint64, out cbor.Unmarshaler, fn func(i uint64) error) (uint64, bool, error) {
	var traversed uint64
	var nextIndex uint64
	var hasMore bool
	err := a.root.ForEachAt(a.store.Context(), start, func(i uint64, val *typegen.Deferred) error {
		if limit > 0 && traversed == limit {
			nextIndex = i
			hasMore = true
			return errStopIteration
		}
		if out != nil {
			if err := out.UnmarshalCBOR(bytes.NewReader(val.Raw)); err != nil {
				return err
			}
		}
		traversed++
		return fn(i)
	})
	if err != nil && err != errStopIteration { //nolint:errorlint
		return 0, false, err
	}
	return nextIndex, hasMore, nil
}
