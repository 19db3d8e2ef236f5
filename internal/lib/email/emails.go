package email

// SendFormReceivedEmail notifies the studio inbox that a new session
// request came in.
func (c *Client) SendFormReceivedEmail(to, fullName, sessionType, message string) error {
	data := map[string]string{
		"FullName":    fullName,
		"SessionType": sessionType,
		"Message":     message,
	}

	return c.SendEmail(
		to,
		"Nova solicitação de ensaio: "+fullName,
		TemplateFormReceived,
		data,
	)
}
