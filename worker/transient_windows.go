package worker

func isTransient(err error) bool {
	return false
}
