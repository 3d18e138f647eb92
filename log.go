package tuple

import "github.com/rs/zerolog"

// MarshalZerologObject lets a pair be logged as a structured object:
//
//	log.Debug().Object("pair", p).Msg("assigned")
func (p Pair[A, B]) MarshalZerologObject(e *zerolog.Event) {
	e.Interface(FieldFirst, p.First).Interface(FieldSecond, p.Second)
}
