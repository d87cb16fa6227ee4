package recipe

import (
	"bytes"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/sebacontegrand/recetasjanet/internal/domain"
)

type ingredientJSON struct {
	Quantity FlexString `json:"quantity"`
	Unit     FlexString `json:"unit"`
	Item     string     `json:"item"`
	Note     FlexString `json:"note"`
}

type stepJSON struct {
	Text     string     `json:"text"`
	Timer    FlexInt    `json:"timer"`
	MediaURL FlexString `json:"mediaUrl"`
}

// ParseForm builds a RecipeInput from a flat form submission and returns
// the optional "id" field, which selects update over create.
// Malformed ingredientsJson or stepsJson yields a *domain.ValidationError
// naming the field; every other field is coerced and left to Validate.
func ParseForm(values url.Values) (RecipeInput, string, error) {
	in := RecipeInput{
		Title:        strings.TrimSpace(values.Get("title")),
		Description:  formString(values, "description"),
		Story:        formString(values, "story"),
		Notes:        formString(values, "notes"),
		PrepTime:     ParseLeadingInt(values.Get("prepTime")),
		CookTime:     ParseLeadingInt(values.Get("cookTime")),
		Portions:     ParseLeadingInt(values.Get("portions")),
		Difficulty:   domain.ParseDifficulty(strings.TrimSpace(values.Get("difficulty"))),
		IsPublished:  parseCheckbox(values.Get("isPublished")),
		CategoryID:   formString(values, "categoryId"),
		Tags:         values.Get("tags"),
		MainImageURL: formString(values, "mainImageUrl"),
	}

	var errs []domain.FieldError

	var ingredients []ingredientJSON
	if err := decodeBlob(values.Get("ingredientsJson"), &ingredients); err != nil {
		errs = append(errs, domain.FieldError{Field: "ingredientsJson", Message: "malformed JSON: " + err.Error()})
	}
	for _, ing := range ingredients {
		in.Ingredients = append(in.Ingredients, IngredientInput{
			Quantity: ing.Quantity.Ptr(),
			Unit:     ing.Unit.Ptr(),
			Item:     strings.TrimSpace(ing.Item),
			Note:     ing.Note.Ptr(),
		})
	}

	var steps []stepJSON
	if err := decodeBlob(values.Get("stepsJson"), &steps); err != nil {
		errs = append(errs, domain.FieldError{Field: "stepsJson", Message: "malformed JSON: " + err.Error()})
	}
	for _, st := range steps {
		in.Steps = append(in.Steps, StepInput{
			Text:     strings.TrimSpace(st.Text),
			Timer:    st.Timer.Ptr(),
			MediaURL: st.MediaURL.Ptr(),
		})
	}

	if len(errs) > 0 {
		return RecipeInput{}, "", &domain.ValidationError{Errors: errs}
	}
	return in, strings.TrimSpace(values.Get("id")), nil
}

// decodeBlob decodes an embedded JSON array. An empty blob is an empty list.
func decodeBlob(raw string, dst any) error {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}
	return json.Unmarshal([]byte(raw), dst)
}

func formString(values url.Values, key string) *string {
	v := values.Get(key)
	return trimOrNil(&v)
}

func parseCheckbox(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1":
		return true
	}
	return false
}

// ParseLeadingInt reads an optional sign and the leading run of digits,
// ignoring leading whitespace: "45 min" is 45. Input without a leading
// number, or one that overflows int, yields nil.
func ParseLeadingInt(s string) *int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return nil
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}

// FlexString decodes a JSON string or number into text.
// null and blank values decode to the zero FlexString.
type FlexString struct {
	value *string
}

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		f.value = nil
		return nil
	}
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		s = n.String()
	}
	f.value = trimOrNil(&s)
	return nil
}

// Ptr returns the trimmed text, or nil when absent or blank.
func (f FlexString) Ptr() *string {
	return f.value
}

// FlexInt decodes a JSON number or a string with a leading integer
// ("10", "10 min"). Zero, null and non-numeric values decode to absent.
type FlexInt struct {
	value *int
}

func (f *FlexInt) UnmarshalJSON(b []byte) error {
	var fs FlexString
	if err := fs.UnmarshalJSON(b); err != nil {
		return err
	}
	f.value = nil
	if s := fs.Ptr(); s != nil {
		if n := ParseLeadingInt(*s); n != nil && *n != 0 {
			f.value = n
		}
	}
	return nil
}

// Ptr returns the decoded value, or nil when absent.
func (f FlexInt) Ptr() *int {
	return f.value
}
