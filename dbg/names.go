package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for values that are otherwise a wall of floats in a log line,
// such as triangles keyed by their corner coordinates. Names are handed out
// lazily and never forgotten, so only use this for debugging.

var (
	memoMu sync.Mutex
	memo   = make(map[interface{}]string)
)

func init() {
	// Names are handed out in order of demand, so the same name means nothing
	// across runs. Keep them random so nobody relies on that.
	petname.NonDeterministicMode()
}

// Name returns the same pet name for equal keys. The key must be comparable.
// Nil pointers, maps and the like are all called "Ø".
func Name(key interface{}) string {
	if isNil(key) {
		return "Ø"
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if name, ok := memo[key]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = name
	return name
}

func isNil(key interface{}) bool {
	if key == nil {
		return true
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
