package types

// Option is the single selector entry shape used by the application
// shell. Server types are adapted into it explicitly so that no caller
// depends on which endpoint a list came from.
type Option struct {
	ID    string
	Label string
}

// AccountOption adapts an account into a selector option.
func AccountOption(a Account) Option {
	return Option{ID: a.ID, Label: a.Name}
}

// CategoryOption adapts a category into a selector option.
func CategoryOption(c Category) Option {
	return Option{ID: c.ID, Label: c.Name}
}

// ContainerOption adapts an account container into a selector option.
func ContainerOption(c AccountContainer) Option {
	return Option{ID: c.ID, Label: c.Name}
}

// AccountOptions adapts a list of accounts.
func AccountOptions(accounts []Account) []Option {
	options := make([]Option, len(accounts))
	for i, a := range accounts {
		options[i] = AccountOption(a)
	}
	return options
}

// CategoryOptions adapts a list of categories.
func CategoryOptions(categories []Category) []Option {
	options := make([]Option, len(categories))
	for i, c := range categories {
		options[i] = CategoryOption(c)
	}
	return options
}

// ContainerOptions adapts a list of account containers.
func ContainerOptions(containers []AccountContainer) []Option {
	options := make([]Option, len(containers))
	for i, c := range containers {
		options[i] = ContainerOption(c)
	}
	return options
}

// FindOption returns the option with the given id, if present.
func FindOption(options []Option, id string) (Option, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}
