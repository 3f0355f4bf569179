package types

import "encoding/json"

// TeacherCollection stores the staff directory.
const TeacherCollection = "teachers"

// Teacher is schema-less apart from Meta: the whole profile is opaque.
type Teacher struct {
	Meta    `bson:",inline"`
	Profile Fields `json:"-" bson:",inline" validate:"min=1"`
}

func (t Teacher) MarshalJSON() ([]byte, error) {
	return encodeWithFields(t.Meta, t.Profile)
}

func (t *Teacher) UnmarshalJSON(data []byte) error {
	var meta Meta
	extra, err := decodeWithFields(data, &meta)
	if err != nil {
		return err
	}
	*t = Teacher{Meta: meta, Profile: extra}
	return nil
}

// TeacherInput is the body of POST /teachers, taken whole as the profile.
type TeacherInput struct {
	Profile Fields
}

func (in *TeacherInput) UnmarshalJSON(data []byte) error {
	var profile Fields
	if err := json.Unmarshal(data, &profile); err != nil {
		return err
	}
	in.Profile = profile
	return nil
}

func (in TeacherInput) Normalize() Teacher {
	return Teacher{Profile: in.Profile.withoutReserved()}
}
