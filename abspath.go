package fpath

// Abspath returns the normalized absolute form of p.
//
// A relative p is joined onto the working directory of r's [Env].
// It returns an [*fs.PathError] with op "getwd" if the working directory
// can not be obtained.
func (r *Resolver) Abspath(p string) (string, error) {
	if IsAbs(p) {
		return Normpath(p), nil
	}
	cwd, err := r.env.Getwd()
	if err != nil {
		return "", WrapPathErr("getwd", p, err)
	}
	return Normpath(Join(cwd, p)), nil
}
