package locale

// Catalog is the ordered message list plus a lookup table keyed by message name.
// It stands in for the per-key getMessage overloads of the generated declarations.
type Catalog struct {
	messages []Message
	index    map[string]int
}

// newCatalog keeps the first message for each key
func newCatalog(messages []Message) *Catalog {
	kept := make([]Message, 0, len(messages))
	index := make(map[string]int, len(messages))
	for _, m := range messages {
		if _, dup := index[m.Key]; dup {
			continue
		}
		index[m.Key] = len(kept)
		kept = append(kept, m)
	}
	return &Catalog{messages: kept, index: index}
}

// Messages returns the messages in declaration order (resource, then built-ins)
func (c *Catalog) Messages() []Message {
	out := make([]Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Keys returns the message keys in declaration order
func (c *Catalog) Keys() []string {
	keys := make([]string, len(c.messages))
	for i, m := range c.messages {
		keys[i] = m.Key
	}
	return keys
}

// Lookup returns the message for key
func (c *Catalog) Lookup(key string) (Message, bool) {
	i, ok := c.index[key]
	if !ok {
		return Message{}, false
	}
	return c.messages[i], true
}

// Len returns the number of messages, built-ins included
func (c *Catalog) Len() int {
	return len(c.messages)
}

// Schema is the shape of the message-schema augmentation.
// T holds plain messages; TP is reserved for parameterized messages and is
// currently always empty.
type Schema struct {
	T  []string
	TP []string
}

// Schema returns the message-schema shape for the catalog
func (c *Catalog) Schema() Schema {
	return Schema{T: c.Keys(), TP: []string{}}
}
