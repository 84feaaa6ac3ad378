package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// CloudSize is the number of attack patterns shown in the word cloud. Only
// a closed set of sizes is offered to the user.
type CloudSize int

const (
	CloudSizeSmall  CloudSize = 20
	CloudSizeMedium CloudSize = 30
	CloudSizeLarge  CloudSize = 40
	CloudSizeXLarge CloudSize = 50

	// DefaultCloudSize is rendered before the user makes a selection
	DefaultCloudSize = CloudSizeSmall
)

// AllCloudSizes returns every selectable cloud size in ascending order
func AllCloudSizes() []CloudSize {
	return []CloudSize{
		CloudSizeSmall,
		CloudSizeMedium,
		CloudSizeLarge,
		CloudSizeXLarge,
	}
}

// Validate checks if the CloudSize is one of the selectable sizes
func (s CloudSize) Validate() error {
	for _, v := range AllCloudSizes() {
		if s == v {
			return nil
		}
	}
	return goerr.New("cloud size must be one of 20, 30, 40 or 50", goerr.V("size", int(s)))
}

// Int returns the size as a plain int
func (s CloudSize) Int() int {
	return int(s)
}
