package schemas

import _ "embed"

//go:embed lexicon.schema.json
var lexiconSchemaJSON []byte

//go:embed generator_response.schema.json
var generatorResponseSchemaJSON []byte
