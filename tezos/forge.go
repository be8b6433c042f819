// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2026 Airgap Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tezos

import (
	"github.com/airgap-inc/coinkit/fault"
	"github.com/airgap-inc/coinkit/util"
)

// fixed field widths inside a forged operation
const (
	branchLength     = 32
	sourceLength     = 1 + addressHashLength // curve tag ‖ hash
	contractIDLength = 2 + addressHashLength // contract tag ‖ tagged payload
)

// ForgeOperation - serialize an operation batch into the exact bytes
// the consensus layer hashes
//
// either a complete byte sequence is returned or an error with no
// partial output
func ForgeOperation(tx *UnsignedTransaction) ([]byte, error) {

	branch, err := util.FromBase58Check(tx.Branch, prefixBlock)
	if nil != err {
		return nil, err
	}
	if branchLength != len(branch) {
		return nil, fault.ErrFieldTooLong
	}

	forged := make([]byte, 0, 128)
	forged = append(forged, branch...)

	for _, operation := range tx.Contents {
		switch op := operation.(type) {

		case *Reveal:
			forged = append(forged, tagReveal)
			forged, err = forgeSource(forged, op.Source)
			if nil != err {
				return nil, err
			}
			forged = appendNat(forged, op.Fee)
			forged = appendNat(forged, op.Counter)
			forged = appendNat(forged, op.GasLimit)
			forged = appendNat(forged, op.StorageLimit)

			publicKey, err := DecodePublicKey(op.PublicKey)
			if nil != err {
				return nil, err
			}
			forged = append(forged, curveTagEd25519)
			forged = append(forged, publicKey...)

		case *Transaction:
			forged = append(forged, tagTransaction)
			forged, err = forgeSource(forged, op.Source)
			if nil != err {
				return nil, err
			}
			forged = appendNat(forged, op.Fee)
			forged = appendNat(forged, op.Counter)
			forged = appendNat(forged, op.GasLimit)
			forged = appendNat(forged, op.StorageLimit)
			forged = appendNat(forged, op.Amount)
			forged, err = forgeContractID(forged, op.Destination)
			if nil != err {
				return nil, err
			}
			forged = append(forged, 0x00) // no parameters

		default:
			return nil, fault.ErrUnsupportedOperationKind
		}
	}
	return forged, nil
}

// source field: curve tag then the hash padded to its fixed width
func forgeSource(buffer []byte, address string) ([]byte, error) {
	tag, hash, err := decodeAddress(address)
	if nil != err {
		return nil, err
	}
	if len(hash) > addressHashLength {
		return nil, fault.ErrFieldTooLong
	}
	buffer = append(buffer, tag)
	buffer = append(buffer, make([]byte, addressHashLength-len(hash))...)
	return append(buffer, hash...), nil
}

// destination field: 22 bytes, implicit account or originated contract
func forgeContractID(buffer []byte, address string) ([]byte, error) {

	if hash, err := util.FromBase58Check(address, prefixKT1); nil == err {
		if len(hash) > addressHashLength {
			return nil, fault.ErrFieldTooLong
		}
		buffer = append(buffer, contractTagOriginated)
		buffer = append(buffer, make([]byte, addressHashLength-len(hash))...)
		buffer = append(buffer, hash...)
		return append(buffer, 0x00), nil // originated padding byte
	}

	buffer = append(buffer, contractTagImplicit)
	return forgeSource(buffer, address)
}

// ParseOperation - decode forged bytes back into an operation batch
//
// the inverse of ForgeOperation for the supported operation kinds
func ParseOperation(forged []byte) (*UnsignedTransaction, error) {

	if len(forged) < branchLength {
		return nil, fault.ErrBufferTooShort
	}

	tx := &UnsignedTransaction{
		Branch: util.ToBase58Check(prefixBlock, forged[:branchLength]),
	}

	buffer := forged[branchLength:]
	for 0 != len(buffer) {
		tag := buffer[0]
		buffer = buffer[1:]

		switch tag {
		case tagReveal:
			op := &Reveal{}
			n, err := parseCommon(buffer, &op.Source, &op.Fee, &op.Counter, &op.GasLimit, &op.StorageLimit)
			if nil != err {
				return nil, err
			}
			buffer = buffer[n:]

			if len(buffer) < 1+32 || curveTagEd25519 != buffer[0] {
				return nil, fault.ErrBufferTooShort
			}
			publicKey, err := EncodePublicKey(buffer[1:33])
			if nil != err {
				return nil, err
			}
			op.PublicKey = publicKey
			buffer = buffer[33:]
			tx.Contents = append(tx.Contents, op)

		case tagTransaction:
			op := &Transaction{}
			n, err := parseCommon(buffer, &op.Source, &op.Fee, &op.Counter, &op.GasLimit, &op.StorageLimit)
			if nil != err {
				return nil, err
			}
			buffer = buffer[n:]

			amount, n, err := parseNat(buffer)
			if nil != err {
				return nil, err
			}
			op.Amount = amount
			buffer = buffer[n:]

			destination, n, err := parseContractID(buffer)
			if nil != err {
				return nil, err
			}
			op.Destination = destination
			buffer = buffer[n:]

			if len(buffer) < 1 || 0x00 != buffer[0] {
				return nil, fault.ErrBufferTooShort
			}
			buffer = buffer[1:]
			tx.Contents = append(tx.Contents, op)

		default:
			return nil, fault.ErrUnsupportedOperationKind
		}
	}
	return tx, nil
}

// the field sequence shared by all manager operations
func parseCommon(buffer []byte, source *string, fee *uint64, counter *uint64, gasLimit *uint64, storageLimit *uint64) (int, error) {

	if len(buffer) < sourceLength {
		return 0, fault.ErrBufferTooShort
	}
	address, err := encodeAddress(buffer[0], buffer[1:sourceLength])
	if nil != err {
		return 0, err
	}
	*source = address
	offset := sourceLength

	for _, field := range []*uint64{fee, counter, gasLimit, storageLimit} {
		value, n, err := parseNat(buffer[offset:])
		if nil != err {
			return 0, err
		}
		*field = value
		offset += n
	}
	return offset, nil
}

func parseContractID(buffer []byte) (string, int, error) {
	if len(buffer) < contractIDLength {
		return "", 0, fault.ErrBufferTooShort
	}

	switch buffer[0] {
	case contractTagImplicit:
		address, err := encodeAddress(buffer[1], buffer[2:contractIDLength])
		if nil != err {
			return "", 0, err
		}
		return address, contractIDLength, nil

	case contractTagOriginated:
		return util.ToBase58Check(prefixKT1, buffer[1:1+addressHashLength]), contractIDLength, nil

	default:
		return "", 0, fault.ErrUnsupportedOperationKind
	}
}
