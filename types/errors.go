// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrNotFound not found
	ErrNotFound = errors.New("ErrNotFound")
	// ErrInvalidParam invalid param
	ErrInvalidParam = errors.New("ErrInvalidParam")
	// ErrInvalidAddress invalid address
	ErrInvalidAddress = errors.New("ErrInvalidAddress")
	// ErrDecode decode error
	ErrDecode = errors.New("ErrDecode")
	// ErrEmpty empty
	ErrEmpty = errors.New("ErrEmpty")
	// ErrAmount amount must be positive
	ErrAmount = errors.New("ErrAmount")
	// ErrInsufficientFunds balance not enough
	ErrInsufficientFunds = errors.New("ErrInsufficientFunds")
	// ErrMintMismatch token account holds another mint
	ErrMintMismatch = errors.New("ErrMintMismatch")
	// ErrMintNotFound mint not exists
	ErrMintNotFound = errors.New("ErrMintNotFound")
	// ErrMintExists mint already created
	ErrMintExists = errors.New("ErrMintExists")
	// ErrNoFundingAccount owner has no token account for the mint
	ErrNoFundingAccount = errors.New("ErrNoFundingAccount")
	// ErrUnauthorized signer may not perform the operation
	ErrUnauthorized = errors.New("ErrUnauthorized")
	// ErrAccountAlreadyClosed account closed before
	ErrAccountAlreadyClosed = errors.New("ErrAccountAlreadyClosed")
	// ErrAccountExists address already in use
	ErrAccountExists = errors.New("ErrAccountExists")
	// ErrEscrowExists escrow address already in use
	ErrEscrowExists = errors.New("ErrEscrowExists")
	// ErrSendSameToRecv from equals to
	ErrSendSameToRecv = errors.New("ErrSendSameToRecv")
	// ErrAccountNotEmpty close a token account with balance
	ErrAccountNotEmpty = errors.New("ErrAccountNotEmpty")
	// ErrSymbolNameNotAllow bad symbol
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	// ErrTxDup transaction executed before
	ErrTxDup = errors.New("ErrTxDup")
	// ErrSign signature check failed
	ErrSign = errors.New("ErrSign")
	// ErrTxSize tx too big
	ErrTxSize = errors.New("ErrTxSize")
	// ErrExecNameNotAllow unknown executor
	ErrExecNameNotAllow = errors.New("ErrExecNameNotAllow")
	// ErrActionNotSupport unknown action
	ErrActionNotSupport = errors.New("ErrActionNotSupport")
	// ErrQueryNotSupport unknown query
	ErrQueryNotSupport = errors.New("ErrQueryNotSupport")
	// ErrTypeAsset value type not match
	ErrTypeAsset = errors.New("ErrTypeAsset")
	// ErrBlockTime block time goes backwards
	ErrBlockTime = errors.New("ErrBlockTime")
	// ErrTooManyTxs too many txs in one block
	ErrTooManyTxs = errors.New("ErrTooManyTxs")
)
