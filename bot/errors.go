// Copyright (c) 2017 the Lingo contributors
// released under the MIT license

package bot

import "errors"

// Runtime Errors
var (
	errProfileFetch   = errors.New("Could not fetch the sender's profile")
	errStoreRead      = errors.New("Could not read context from the datastore")
	errStoreWrite     = errors.New("Could not write context to the datastore")
	errTranslation    = errors.New("Translation request failed")
	errSendFailed     = errors.New("Could not deliver reply")
	errUnknownTag     = errors.New("Unrecognized postback payload tag")
	errNoEventContent = errors.New("Event carries neither message nor postback")
	errBadSignature   = errors.New("Webhook payload signature mismatch")
	errBadVerifyToken = errors.New("Webhook verify token mismatch")
)

// Config Errors
var (
	errListenMissing        = errors.New("Server listen address missing")
	errPageTokenMissing     = errors.New("Platform page token missing")
	errVerifyTokenMissing   = errors.New("Platform verify token missing")
	errAppSecretMissing     = errors.New("Platform app secret missing")
	errPageIDMissing        = errors.New("Platform page id missing")
	errTranslatorKeyMissing = errors.New("Translator key missing")
	errDatastorePathMissing = errors.New("Datastore path missing")
	errDatastoreBackend     = errors.New("Unknown datastore backend")
)
