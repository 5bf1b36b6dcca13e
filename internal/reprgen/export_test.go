package reprgeninternal

var Variant = variant
