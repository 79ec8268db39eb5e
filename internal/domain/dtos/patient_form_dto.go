package dtos

// PatientForm defines the payload of a submitted patient form. Every value
// arrives as a string, exactly as the form posted it; parsing and rule checks
// happen in the validation package, so a rejected submission can be echoed
// back to the caller untouched.
type PatientForm struct {
	Name    string `json:"name" form:"name"`
	Age     string `json:"age" form:"age"`
	Phone   string `json:"phone" form:"phone"`
	Address string `json:"address" form:"address"`
	// Action distinguishes an edit-form save from its delete button.
	// A value of "delete" removes the record instead of updating it.
	Action string `json:"action,omitempty" form:"action"`
}
