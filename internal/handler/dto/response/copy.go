package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// Responses render ids as strings and instants as RFC 3339 in UTC.
var copyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
		{
			SrcType: (*uuid.UUID)(nil),
			DstType: (*string)(nil),
			Fn: func(src interface{}) (interface{}, error) {
				id := src.(*uuid.UUID)
				if id == nil {
					return (*string)(nil), nil
				}
				s := id.String()
				return &s, nil
			},
		},
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src interface{}) (interface{}, error) {
				return formatTime(src.(time.Time)), nil
			},
		},
		{
			SrcType: (*time.Time)(nil),
			DstType: (*string)(nil),
			Fn: func(src interface{}) (interface{}, error) {
				t := src.(*time.Time)
				if t == nil {
					return (*string)(nil), nil
				}
				s := formatTime(*t)
				return &s, nil
			},
		},
	},
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func copyInto(to, from any) {
	// Both sides are declared here; a failure is a programming error.
	if err := copier.CopyWithOption(to, from, copyOption); err != nil {
		panic("response copy: " + err.Error())
	}
}
