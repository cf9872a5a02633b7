package logger

// PassError logs err at Error level and returns both values unchanged,
// making it a transparent wrapper for the common two-value return:
//
//	f, err := logger.PassError(os.Open(path))
//
// A nil err logs nothing. On failure the sink receives exactly the
// bytes of err.Error(), and the exit-on-error policy applies as for
// any other Error-level message. PassError never recovers, transforms,
// or swallows the error.
func PassError[T any](v T, err error) (T, error) {
	if err != nil {
		Log(ErrorLevel, []byte(err.Error()))
	}
	return v, err
}

// CheckError is PassError for bare error returns.
func CheckError(err error) error {
	if err != nil {
		Log(ErrorLevel, []byte(err.Error()))
	}
	return err
}
