/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package policy

// Schema is the json schema for validation policy documents
const Schema = `{
	"type": "object",
	"additionalProperties": false,
	"properties": {
		"failFast": {
			"type": "boolean"
		},
		"required": {
			"type": "array",
			"items": { "$ref": "#/definitions/identifier" },
			"uniqueItems": true
		},
		"forbidden": {
			"type": "array",
			"items": { "$ref": "#/definitions/identifier" },
			"uniqueItems": true
		},
		"constraints": {
			"type": "object",
			"patternProperties": {
				"^[0-9]{2,4}$": { "$ref": "#/definitions/constraint" }
			},
			"additionalProperties": false
		}
	},
	"definitions": {
		"identifier": {
			"type": "string",
			"pattern": "^[0-9]{2,4}$"
		},
		"constraint": {
			"type": "object",
			"additionalProperties": false,
			"minProperties": 1,
			"properties": {
				"pattern": {
					"type": "string",
					"minLength": 1
				},
				"minLength": {
					"type": "integer",
					"minimum": 0
				},
				"maxLength": {
					"type": "integer",
					"minimum": 0
				},
				"oneOf": {
					"type": "array",
					"items": { "type": "string" },
					"minItems": 1
				},
				"numeric": {
					"type": "boolean"
				}
			}
		}
	}
}`
