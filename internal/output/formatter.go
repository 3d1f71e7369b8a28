package output

// Formatter formats a Result into bytes for output.
// buf is a reusable buffer: implementations append to it and return the result.
// On error the returned slice has the length buf had on entry, and the error
// is the one the Result's render function reported.
type Formatter interface {
	Format(buf []byte, result Result) ([]byte, error)
}
