package validators

import "go.mongodb.org/mongo-driver/bson"

var RegistrationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType":             "object",
		"required":             []string{"email", "first_name", "last_name", "allowed_roles", "password_hash", "created_at"},
		"additionalProperties": true,
		"properties": bson.M{
			"_id":         bson.M{"bsonType": "objectId"},
			"first_name":  bson.M{"bsonType": "string", "minLength": 2, "maxLength": 50},
			"last_name":   bson.M{"bsonType": "string", "minLength": 2, "maxLength": 50},
			"email":       bson.M{"bsonType": "string", "maxLength": 254},
			"phone":       bson.M{"bsonType": "string", "pattern": `^\+1[0-9]{10}$`},
			"address1":    bson.M{"bsonType": "string", "minLength": 5, "maxLength": 100},
			"city":        bson.M{"bsonType": "string"},
			"state":       bson.M{"bsonType": "string", "minLength": 2, "maxLength": 2},
			"postal_code": bson.M{"bsonType": "string", "pattern": `^[0-9]{5}(-[0-9]{4})?$`},
			"allowed_roles": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"maxItems": 2,
				"items":    bson.M{"enum": []string{"caregiver", "patient"}},
			},
			"password_hash": bson.M{"bsonType": "string"},
			"created_at":    bson.M{"bsonType": "date"},
		},
	},
}
