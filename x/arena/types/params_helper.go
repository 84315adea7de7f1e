package types

import (
	"fmt"

	paramstypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

// Parameter keys
var (
	KeySessionTimeLimitSeconds = []byte("SessionTimeLimitSeconds")
	KeyMaxNameLength           = []byte("MaxNameLength")
)

// Default parameter values.
const (
	DefaultSessionTimeLimitSeconds uint64 = 600 // 10 minutes
	DefaultMaxNameLength           uint32 = 10
)

// ParamKeyTable returns the parameter key table.
func ParamKeyTable() paramstypes.KeyTable {
	return paramstypes.NewKeyTable().RegisterParamSet(&Params{})
}

// ParamSetPairs implements params.ParamSet.
func (p *Params) ParamSetPairs() paramstypes.ParamSetPairs {
	return paramstypes.ParamSetPairs{
		paramstypes.NewParamSetPair(KeySessionTimeLimitSeconds, &p.SessionTimeLimitSeconds, validateNonZeroUint64("session_time_limit_seconds")),
		paramstypes.NewParamSetPair(KeyMaxNameLength, &p.MaxNameLength, validateNonZeroUint32("max_name_length")),
	}
}

// DefaultParams returns default module parameters.
func DefaultParams() Params {
	return Params{
		SessionTimeLimitSeconds: DefaultSessionTimeLimitSeconds,
		MaxNameLength:           DefaultMaxNameLength,
	}
}

// Validate performs basic validation of module parameters.
func (p Params) Validate() error {
	if err := validateNonZeroUint64("session_time_limit_seconds")(p.SessionTimeLimitSeconds); err != nil {
		return err
	}
	return validateNonZeroUint32("max_name_length")(p.MaxNameLength)
}

func validateNonZeroUint64(name string) paramstypes.ValueValidatorFn {
	return func(i interface{}) error {
		v, ok := i.(uint64)
		if !ok {
			return fmt.Errorf("invalid parameter type for %s", name)
		}
		if v == 0 {
			return fmt.Errorf("%s must be positive", name)
		}
		return nil
	}
}

func validateNonZeroUint32(name string) paramstypes.ValueValidatorFn {
	return func(i interface{}) error {
		v, ok := i.(uint32)
		if !ok {
			return fmt.Errorf("invalid parameter type for %s", name)
		}
		if v == 0 {
			return fmt.Errorf("%s must be positive", name)
		}
		return nil
	}
}
