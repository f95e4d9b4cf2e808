package defaults

import "github.com/monetaio/moneta/config"

// APIURL returns the base address of the finance API, either from the
// stored configuration or the development default.
func APIURL() string {
	return config.GetOrDefault("host", "http://localhost:8080/api/v1")
}
