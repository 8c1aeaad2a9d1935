package source

import (
	enumwire "github.com/reoring/enumwire"
	drvgojson "github.com/reoring/enumwire/source/gojson"
)

// init in a separate package to avoid import cycle in root. This sets go-json as default driver.
func init() { enumwire.SetJSONDriver(drvgojson.Driver()) }
