package elemjson

//Package elemjson implements serialization and unserialization of
//goElem data types. Its planned use is the communication of goElem
//programs with other, independent programs which can be written in
//languages other than Go, as long as those languages implement a
//way of serializing and unserializing JSON data.
//Streams can optionally be zstd-compressed, which keeps batches of
//atom records small when they are moved over pipes or sockets.
//elemjson never opens files itself; the caller owns every reader
//and writer involved.
