package domain

import "fmt"

// State identifies an Indian state or union territory.
// The zero value means no state has been chosen.
type State string

// States and union territories of India.
const (
	StateAndhraPradesh    State = "Andhra Pradesh"
	StateArunachalPradesh State = "Arunachal Pradesh"
	StateAssam            State = "Assam"
	StateBihar            State = "Bihar"
	StateChhattisgarh     State = "Chhattisgarh"
	StateGoa              State = "Goa"
	StateGujarat          State = "Gujarat"
	StateHaryana          State = "Haryana"
	StateHimachalPradesh  State = "Himachal Pradesh"
	StateJharkhand        State = "Jharkhand"
	StateKarnataka        State = "Karnataka"
	StateKerala           State = "Kerala"
	StateMadhyaPradesh    State = "Madhya Pradesh"
	StateMaharashtra      State = "Maharashtra"
	StateManipur          State = "Manipur"
	StateMeghalaya        State = "Meghalaya"
	StateMizoram          State = "Mizoram"
	StateNagaland         State = "Nagaland"
	StateOdisha           State = "Odisha"
	StatePunjab           State = "Punjab"
	StateRajasthan        State = "Rajasthan"
	StateSikkim           State = "Sikkim"
	StateTamilNadu        State = "Tamil Nadu"
	StateTelangana        State = "Telangana"
	StateTripura          State = "Tripura"
	StateUttarPradesh     State = "Uttar Pradesh"
	StateUttarakhand      State = "Uttarakhand"
	StateWestBengal       State = "West Bengal"

	StateAndamanNicobar State = "Andaman and Nicobar Islands"
	StateChandigarh     State = "Chandigarh"
	StateDadraDamanDiu  State = "Dadra and Nagar Haveli and Daman and Diu"
	StateDelhi          State = "Delhi"
	StateJammuKashmir   State = "Jammu and Kashmir"
	StateLadakh         State = "Ladakh"
	StateLakshadweep    State = "Lakshadweep"
	StatePuducherry     State = "Puducherry"
)

var allStates = []State{
	StateAndhraPradesh, StateArunachalPradesh, StateAssam, StateBihar,
	StateChhattisgarh, StateGoa, StateGujarat, StateHaryana,
	StateHimachalPradesh, StateJharkhand, StateKarnataka, StateKerala,
	StateMadhyaPradesh, StateMaharashtra, StateManipur, StateMeghalaya,
	StateMizoram, StateNagaland, StateOdisha, StatePunjab,
	StateRajasthan, StateSikkim, StateTamilNadu, StateTelangana,
	StateTripura, StateUttarPradesh, StateUttarakhand, StateWestBengal,
	StateAndamanNicobar, StateChandigarh, StateDadraDamanDiu, StateDelhi,
	StateJammuKashmir, StateLadakh, StateLakshadweep, StatePuducherry,
}

// AllStates returns every state and union territory in a fresh slice.
func AllStates() []State {
	out := make([]State, len(allStates))
	copy(out, allStates)
	return out
}

// ParseState converts a canonical state name into a State.
// The empty string yields the zero State. Matching is case-sensitive.
func ParseState(s string) (State, error) {
	if s == "" {
		return "", nil
	}
	st := State(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownState, s)
	}
	return st, nil
}

// IsValid returns true if the state is recognised.
func (s State) IsValid() bool {
	for _, known := range allStates {
		if s == known {
			return true
		}
	}
	return false
}

// IsZero reports whether no state is set.
func (s State) IsZero() bool {
	return s == ""
}

// String returns the string representation.
func (s State) String() string {
	return string(s)
}
