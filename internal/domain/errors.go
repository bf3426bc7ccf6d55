package domain

import "errors"

var (
	ErrNoMarketData      = errors.New("no market data available")
	ErrUnknownCrop       = errors.New("unknown crop")
	ErrUnknownStorage    = errors.New("unknown storage type")
	ErrInvalidInput      = errors.New("invalid input")
	ErrRateLimited       = errors.New("rate limits exceeded, please try again later")
	ErrPaymentRequired   = errors.New("payment required, please add funds to your workspace")
	ErrGateway           = errors.New("analysis gateway error")
	ErrMalformedResponse = errors.New("malformed response")
)
