package models

import "gorm.io/datatypes"

// JSONB stores a JSON object column, serialized on write and parsed on
// read. Aliased so every model shares one definition.
type JSONB = datatypes.JSONMap
