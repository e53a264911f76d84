package utils

import (
	"net/url"
	"strconv"
	"strings"

	errs "github.com/ONSdigital/dp-cache-purge-api/apierrors"
)

// ValidatePositiveInt obtains the positive int value of query var defined by the provided varKey
func ValidatePositiveInt(parameter string) (val int, err error) {
	val, err = strconv.Atoi(parameter)
	if err != nil {
		return -1, errs.ErrInvalidQueryParameter
	}
	if val < 0 {
		return -1, errs.ErrInvalidQueryParameter
	}
	return val, nil
}

// GetQueryParamListValues obtains a list of strings from the provided queryVars,
// by parsing all values with key 'varKey' and splitting the values by commas, if they contain commas.
// Up to maxNumItems values are allowed in total.
func GetQueryParamListValues(queryVars url.Values, varKey string, maxNumItems int) (items []string, err error) {
	// get query parameters values for the provided key
	values, found := queryVars[varKey]
	if !found {
		return []string{}, nil
	}

	// each value may contain a simple value or a list of values, in a comma-separated format
	for _, value := range values {
		items = append(items, strings.Split(value, ",")...)
		if len(items) > maxNumItems {
			return []string{}, errs.ErrTooManyQueryParameters
		}
	}
	return items, nil
}

// UnionExtensions merges the provided extension sets into a single list
// without duplicates, preserving first-seen order. Any leading dot is
// stripped so config may supply extensions in either form.
func UnionExtensions(sets ...[]string) []string {
	seen := make(map[string]struct{})
	var union []string

	for _, set := range sets {
		for _, extension := range set {
			extension = strings.TrimPrefix(extension, ".")
			if extension == "" {
				continue
			}
			if _, ok := seen[extension]; ok {
				continue
			}
			seen[extension] = struct{}{}
			union = append(union, extension)
		}
	}
	return union
}
