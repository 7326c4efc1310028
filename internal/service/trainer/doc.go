// Package trainer ties the word catalog to the statistics engine: it decides
// which word to ask next, grades answers and exposes the rule-group relations
// a UI shows after an answer.
package trainer
