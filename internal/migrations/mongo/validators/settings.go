package validators

import "go.mongodb.org/mongo-driver/bson"

var SettingsValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"owner", "key", "value"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":        bson.M{"bsonType": "objectId"},
			"owner":      bson.M{"bsonType": "string", "minLength": 1, "maxLength": 254},
			"key":        bson.M{"bsonType": "string"},
			"value":      bson.M{"bsonType": "string"},
			"updated_at": bson.M{"bsonType": "date"},
		},
	},
}
