package tileset

import "github.com/invopop/jsonschema"

// JSONSchema describes the Tiled JSON tileset fields ParseJSON reads.
func JSONSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}

	schema := reflector.Reflect(&tsjTileset{})
	schema.Title = "Tileset"
	schema.Description = "Tiled JSON tileset made of individual tile images."
	return schema
}
