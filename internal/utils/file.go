package utils

import "os"

// IsPathOccupied checks whether the given path already exists
func IsPathOccupied(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
