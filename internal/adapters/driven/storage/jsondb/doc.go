// Package jsondb reads and writes the db.json seed file.
//
// The file uses the TinyDB layout: one top-level object per table, each
// mapping a numeric document key to a record.
//
//	{
//	    "users": {
//	        "1": {"id": "1", "firstName": "Ada", "lastName": "Lovelace"}
//	    },
//	    "documents": {
//	        "1": {"id": "d1", "userId": "1", "title": "Annual Report"}
//	    }
//	}
//
// A table may also be a plain JSON array of records. Records are returned in
// ascending key order, which is the order they were inserted.
package jsondb
