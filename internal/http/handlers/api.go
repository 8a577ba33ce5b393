package handlers

import "encoding/json"

// bindRaw decodes a JSON body that has already been read, so the same
// payload can be applied twice (extract the ID, then merge).
func bindRaw(body []byte, dst any) error {
	return json.Unmarshal(body, dst)
}
