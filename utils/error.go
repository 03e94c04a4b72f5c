package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// ErrorAlreadyFinalized is returned when a finalization run is attempted for a
// cycle+mode pair that already has a persisted result. The caller should recount
// under a new cycle instead of retrying.
var ErrorAlreadyFinalized = errors.New("inventário atual já finalizado")

func ErrorPanic(err error) {
	if err != nil {
		panic(err)
	}
}
