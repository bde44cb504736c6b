package swagger

import _ "embed"

// OpenAPI contains the embedded OpenAPI YAML document. Its info.version
// is a placeholder; serve the output of Document instead.
//
//go:embed openapi.yaml
var OpenAPI []byte
