package models

type Invoice struct {
	InvoiceID     int     `json:"InvoiceId"`
	ApplicationID int     `json:"ApplicationId"`
	PatientName   string  `json:"PatientName"`
	Amount        float64 `json:"Amount"`
	IssuedDate    string  `json:"IssuedDate"`
	Paid          bool    `json:"Paid"`
}

func (i Invoice) SearchFields() []string {
	status := "Unpaid"
	if i.Paid {
		status = "Paid"
	}
	return []string{i.PatientName, i.IssuedDate, status}
}
