// Package application holds the single in-progress mortgage application:
// the record the wizard screens write into, the derived affordability
// figures, and the persistence lifecycle including autosave.
package application

// PersonalInfo is the applicant identity section. Non-emptiness is a UI
// concern; nothing here validates.
type PersonalInfo struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	SSN         string `json:"ssn,omitempty"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	ZipCode     string `json:"zipCode"`
}

// Employment is the income section. MonthlyIncome plus AdditionalIncome is
// the canonical gross monthly income everywhere DTI is computed.
type Employment struct {
	Status           string  `json:"status"`
	Employer         string  `json:"employer,omitempty"`
	JobTitle         string  `json:"jobTitle,omitempty"`
	YearsEmployed    float64 `json:"yearsEmployed,omitempty"`
	MonthlyIncome    float64 `json:"monthlyIncome"`
	AdditionalIncome float64 `json:"additionalIncome,omitempty"`
}

// Assets holds reserve balances plus the down payment, which is tracked
// separately from reserves in the affordability math.
type Assets struct {
	DownPayment      float64 `json:"downPayment"`
	SavingsAccounts  float64 `json:"savingsAccounts"`
	CheckingAccounts float64 `json:"checkingAccounts"`
	Investments      float64 `json:"investments"`
	Retirement       float64 `json:"retirement"`
}

// TotalAvailable sums every asset field plus one-time gift funds. Gift
// funds are a screen-local figure and are not persisted with the record.
func (a Assets) TotalAvailable(giftFunds float64) float64 {
	return a.DownPayment + a.SavingsAccounts + a.CheckingAccounts +
		a.Investments + a.Retirement + giftFunds
}

// Reserves is the total excluding the down payment, the figure lenders
// compare against required post-closing reserves.
func (a Assets) Reserves() float64 {
	return a.SavingsAccounts + a.CheckingAccounts + a.Investments + a.Retirement
}

// Debts holds monthly payment obligations. Rent is collected on the debts
// screen for context but deliberately excluded from DTI totals.
type Debts struct {
	CreditCards  float64 `json:"creditCards"`
	CarLoans     float64 `json:"carLoans"`
	StudentLoans float64 `json:"studentLoans"`
	OtherDebts   float64 `json:"otherDebts"`
}

// TotalMonthly sums the four debt fields.
func (d Debts) TotalMonthly() float64 {
	return d.CreditCards + d.CarLoans + d.StudentLoans + d.OtherDebts
}

// Data is the aggregate application record, serialized under the
// mortgageApplication key in exactly this shape.
type Data struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Employment   Employment   `json:"employment"`
	Assets       Assets       `json:"assets"`
	Debts        Debts        `json:"debts"`
	Documents    []string     `json:"documents,omitempty"`
}

// GrossMonthlyIncome is monthly income plus additional income.
func (d Data) GrossMonthlyIncome() float64 {
	return d.Employment.MonthlyIncome + d.Employment.AdditionalIncome
}

// DefaultData returns the all-zero default record used before any screen
// has been submitted and after a clear.
func DefaultData() Data {
	return Data{
		Employment: Employment{Status: "employed"},
	}
}

// PersonalInfoUpdate is a partial update; nil fields are left untouched.
type PersonalInfoUpdate struct {
	FirstName   *string `json:"firstName,omitempty"`
	LastName    *string `json:"lastName,omitempty"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	SSN         *string `json:"ssn,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Email       *string `json:"email,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	ZipCode     *string `json:"zipCode,omitempty"`
}

// EmploymentUpdate is a partial update; nil fields are left untouched.
type EmploymentUpdate struct {
	Status           *string  `json:"status,omitempty"`
	Employer         *string  `json:"employer,omitempty"`
	JobTitle         *string  `json:"jobTitle,omitempty"`
	YearsEmployed    *float64 `json:"yearsEmployed,omitempty"`
	MonthlyIncome    *float64 `json:"monthlyIncome,omitempty"`
	AdditionalIncome *float64 `json:"additionalIncome,omitempty"`
}

// AssetsUpdate is a partial update; nil fields are left untouched.
type AssetsUpdate struct {
	DownPayment      *float64 `json:"downPayment,omitempty"`
	SavingsAccounts  *float64 `json:"savingsAccounts,omitempty"`
	CheckingAccounts *float64 `json:"checkingAccounts,omitempty"`
	Investments      *float64 `json:"investments,omitempty"`
	Retirement       *float64 `json:"retirement,omitempty"`
}

// DebtsUpdate is a partial update; nil fields are left untouched.
type DebtsUpdate struct {
	CreditCards  *float64 `json:"creditCards,omitempty"`
	CarLoans     *float64 `json:"carLoans,omitempty"`
	StudentLoans *float64 `json:"studentLoans,omitempty"`
	OtherDebts   *float64 `json:"otherDebts,omitempty"`
}

func (u PersonalInfoUpdate) apply(p *PersonalInfo) {
	setString(&p.FirstName, u.FirstName)
	setString(&p.LastName, u.LastName)
	setString(&p.DateOfBirth, u.DateOfBirth)
	setString(&p.SSN, u.SSN)
	setString(&p.Phone, u.Phone)
	setString(&p.Email, u.Email)
	setString(&p.Address, u.Address)
	setString(&p.City, u.City)
	setString(&p.State, u.State)
	setString(&p.ZipCode, u.ZipCode)
}

func (u EmploymentUpdate) apply(e *Employment) {
	setString(&e.Status, u.Status)
	setString(&e.Employer, u.Employer)
	setString(&e.JobTitle, u.JobTitle)
	setFloat(&e.YearsEmployed, u.YearsEmployed)
	setFloat(&e.MonthlyIncome, u.MonthlyIncome)
	setFloat(&e.AdditionalIncome, u.AdditionalIncome)
}

func (u AssetsUpdate) apply(a *Assets) {
	setFloat(&a.DownPayment, u.DownPayment)
	setFloat(&a.SavingsAccounts, u.SavingsAccounts)
	setFloat(&a.CheckingAccounts, u.CheckingAccounts)
	setFloat(&a.Investments, u.Investments)
	setFloat(&a.Retirement, u.Retirement)
}

func (u DebtsUpdate) apply(d *Debts) {
	setFloat(&d.CreditCards, u.CreditCards)
	setFloat(&d.CarLoans, u.CarLoans)
	setFloat(&d.StudentLoans, u.StudentLoans)
	setFloat(&d.OtherDebts, u.OtherDebts)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}
